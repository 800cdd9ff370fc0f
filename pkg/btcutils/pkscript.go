package btcutils

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common"
	"github.com/gaze-network/slp-indexer/common/errs"
)

// ToPkScript converts a legacy address or a hex pkScript to pkScript bytes.
func ToPkScript(network common.Network, from string) ([]byte, error) {
	if from == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "empty input")
	}
	params := network.ChainParams()
	if params == nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid network %q", network)
	}

	// attempt to parse as address
	address, err := btcutil.DecodeAddress(from, params)
	if err == nil {
		if !address.IsForNet(params) {
			return nil, errors.Wrapf(errs.InvalidArgument, "address %s is not for %s", from, network)
		}
		pkScript, err := txscript.PayToAddrScript(address)
		if err != nil {
			return nil, errors.Wrap(err, "error converting address to pkscript")
		}
		return pkScript, nil
	}

	// attempt to parse as pkscript
	pkScript, err := hex.DecodeString(from)
	if err != nil {
		return nil, errors.Wrap(errs.InvalidArgument, "input is neither an address nor a hex pkscript")
	}
	return pkScript, nil
}

// PkScriptToAddress returns the legacy address paid by a standard single-address pkScript.
func PkScriptToAddress(pkScript []byte, network common.Network) (string, error) {
	params := network.ChainParams()
	if params == nil {
		return "", errors.Wrapf(errs.InvalidArgument, "invalid network %q", network)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, params)
	if err != nil {
		return "", errors.Wrap(err, "error extracting addresses from pkscript")
	}
	if len(addrs) != 1 {
		return "", errors.Wrapf(errs.InvalidArgument, "expected one address in pkscript, got %d", len(addrs))
	}
	return addrs[0].EncodeAddress(), nil
}
