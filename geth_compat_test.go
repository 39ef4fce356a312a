package calldata

import (
	"math/rand"
	"os"
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

/*
Cross-checks against the go-ethereum ABI packer, which is the de facto reference
implementation. Only the types supported here are exercised.
*/

func loadGethAbi(t *testing.T) gethabi.ABI {
	file, err := os.Open("testdata/token_abi.json")
	require.NoError(t, err)
	defer file.Close()

	parsed, err := gethabi.JSON(file)
	require.NoError(t, err)
	return parsed
}

func TestGethCompatRandom(t *testing.T) {
	ours := loadTestAbi(t)
	theirs := loadGethAbi(t)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 64; i++ {
		var addrA, addrB Address
		var num Uint256
		rnd.Read(addrA[:])
		rnd.Read(addrB[:])
		rnd.Read(num[rnd.Intn(len(num)):])

		expected, err := theirs.Pack("transfer", common.Address(addrA), num.Big())
		require.NoError(t, err)
		actual, err := EncodeCall(ours, "transfer", addrA, num)
		require.NoError(t, err)
		require.Equal(t, expected, actual)

		expected, err = theirs.Pack("allowance", common.Address(addrA), common.Address(addrB))
		require.NoError(t, err)
		actual, err = EncodeCall(ours, "allowance", addrA, addrB)
		require.NoError(t, err)
		require.Equal(t, expected, actual)

		expected, err = theirs.Pack("balanceOf", common.Address(addrB))
		require.NoError(t, err)
		actual, err = EncodeCall(ours, "balanceOf", addrB)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
}

func TestGethCompatSelectors(t *testing.T) {
	theirs := loadGethAbi(t)

	for _, fun := range loadTestAbi(t) {
		method, ok := theirs.Methods[fun.Name]
		require.True(t, ok, fun.Name)
		require.Equal(t, method.ID, fun.Selector[:], fun.Name)

		sig, err := fun.Signature()
		require.NoError(t, err)
		require.Equal(t, method.Sig, sig)
	}

	for _, fun := range Erc20Abi {
		sig, err := fun.Signature()
		require.NoError(t, err)
		require.Equal(t, crypto.Keccak256([]byte(sig))[:SelectorLen], fun.Selector[:], sig)
	}
}

func TestGethCompatKeccak(t *testing.T) {
	for _, input := range []string{"", "a", "transfer(address,uint256)"} {
		sum := Keccak256([]byte(input))
		require.Equal(t, crypto.Keccak256([]byte(input)), sum[:], input)
	}
}
