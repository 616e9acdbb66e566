// Package bindings holds the go-ethereum bindings of the token factory contract.
package bindings

//go:generate abigen --abi ../../../../contracts/memecoins/out/release/memecoins-contract-abi.json --pkg bindings --type TokenFactory --out tokenfactory.go
