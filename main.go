package main

import "repairdesk.com/repairdesk/cmd"

func main() {
	cmd.Execute()
}
