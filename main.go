// SPDX-License-Identifier: MPL-2.0

package main

import cmd "pydist-cli/cmd/pydist"

func main() {
	cmd.Execute()
}
