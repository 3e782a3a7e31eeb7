package util

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var zeroHashPattern = regexp.MustCompile("^0?x?0+$")

// IsZeroHash 是否是零的十六进制
func IsZeroHash(s string) bool {
	return zeroHashPattern.MatchString(s)
}

// IsValidHexAddress 是否是有效钱包地址
func IsValidHexAddress(s string) bool {
	if IsZeroHash(s) || !common.IsHexAddress(s) {
		return false
	}
	return true
}
