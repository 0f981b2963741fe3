package app

import (
	"testing"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/vanetest"
	"github.com/iov-one/vane/x/cash"
	"github.com/iov-one/vane/x/multipay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

const testGenesis = `{
	"conf": {"cash": {"minimum_balance": "1 VAN"}},
	"cash": [{"address": "0101010101010101010101010101010101010101010101010101010101010101", "coins": "1000 VAN"}]
}`

func TestABCIEscrowFlow(t *testing.T) {
	r := NewRouter()
	multipay.RegisterRoutes(r, cash.NewController())
	init := vane.ChainInitializers(cash.Initializer{}, multipay.Initializer{})
	a, _, cleanup := newTestApp(t, r, init)
	defer cleanup()
	node := NewABCI(a, false)

	node.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(testGenesis)})
	node.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, Time: now}})

	payer := vanetest.SequenceAddr(1)
	payee := vanetest.SequenceAddr(2)
	tx, err := EncodeMsg(&multipay.OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(100, 0, "VAN")})
	require.NoError(t, err)

	check := node.CheckTx(tx)
	require.Equal(t, uint32(0), check.Code, check.Log)

	res := node.DeliverTx(tx)
	require.Equal(t, uint32(0), res.Code, res.Log)
	escrow := vane.Address(res.Data)
	assert.Equal(t, multipay.DeriveEscrowAddress(payee, payer, multipay.NoResolver()), escrow)

	tags := make(map[string]string)
	for _, tag := range res.Tags {
		tags[string(tag.Key)] = string(tag.Value)
	}
	assert.Equal(t, escrow.String(), tags["multipay.MultiAccountCreated.account_id"])
	assert.Equal(t, payer.String(), tags["multipay.BalanceTransferredAndLocked.from"])

	commit := node.Commit()
	assert.NotEmpty(t, commit.Data)
	info := node.Info(abci.RequestInfo{})
	assert.EqualValues(t, 1, info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)

	// A failed transfer is reported with the code of the root error.
	tx, err = EncodeMsg(&multipay.OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(5000, 0, "VAN")})
	require.NoError(t, err)
	res = node.DeliverTx(tx)
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res.Code)
	assert.Empty(t, res.Tags)
}

func TestABCIRejectsInvalidTransactions(t *testing.T) {
	a, _, cleanup := newTestApp(t, NewRouter(), nil)
	defer cleanup()
	node := NewABCI(a, false)

	res := node.DeliverTx([]byte("not a message"))
	assert.Equal(t, errors.ErrMsg.ABCICode(), res.Code)

	tx, err := EncodeMsg(&multipay.RevertMsg{Payer: vanetest.SequenceAddr(1)})
	require.NoError(t, err)
	check := node.CheckTx(tx)
	assert.Equal(t, errors.ErrInput.ABCICode(), check.Code)
}

func TestEventTags(t *testing.T) {
	events := []vane.Event{
		vane.NewEvent("a").With("x", []byte("1")).With("y", []byte("2")),
		vane.NewEvent("b"),
		vane.NewEvent("c").With("z", []byte("3")),
	}
	tags := EventTags(events)
	require.Len(t, tags, 3)
	assert.Equal(t, "a.x", string(tags[0].Key))
	assert.Equal(t, "a.y", string(tags[1].Key))
	assert.Equal(t, "c.z", string(tags[2].Key))
	assert.Equal(t, "3", string(tags[2].Value))
}
