package main

import "github.com/up2sumit/KarmQuest/cmd/kq/root"

func main() {
	root.Execute()
}
