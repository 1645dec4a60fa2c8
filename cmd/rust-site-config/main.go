package main

import "github.com/oshokin/rust-site-config/cmd/rust-site-config/cmd"

func main() {
	cmd.Execute()
}
