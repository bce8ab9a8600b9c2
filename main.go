package main

import "github.com/OpenListTeam/gofile-uploader/cmd"

func main() {
	cmd.Execute()
}
