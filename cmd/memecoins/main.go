// Command memecoins deploys and administers the token factory contract.
package main

func main() {
	Execute()
}
