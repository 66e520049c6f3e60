package command

import "slices"

// Translate maps a Command onto the argument vector for the chosen client.
// The result starts with the client binary name; no part of the command is
// reinterpreted or rewritten on the way through.
//
//	List{}           -> [s4cmd ls]            / [s5cmd ls]
//	List{Path: p}    -> [s4cmd ls p]          / [s5cmd ls p]
//	Put{src, dst}    -> [s4cmd put src dst]   / [s5cmd cp src dst]
//
// The put/cp asymmetry is the clients' own naming; hiding it is the point of
// this wrapper.
func Translate(cmd Command, client Client) []string {
	argv := []string{client.Binary()}

	switch cmd := cmd.(type) {
	case List:
		argv = append(argv, "ls")
		if cmd.Path != "" {
			argv = append(argv, cmd.Path)
		}
	case Put:
		if client == S5cmd {
			argv = append(argv, "cp")
		} else {
			argv = append(argv, "put")
		}
		argv = append(argv, cmd.Source, cmd.Target)
	}

	return argv
}

// Augment adds endpoint and region passthrough in the form the client
// expects. s4cmd takes both as trailing flags; s5cmd only understands a
// global --endpoint-url before the subcommand and resolves the region from
// its own environment. Empty values leave argv untouched.
func Augment(argv []string, client Client, endpoint, region string) []string {
	switch client {
	case S4cmd:
		if endpoint != "" {
			argv = append(argv, "--endpoint", endpoint)
		}
		if region != "" && !slices.Contains(argv, "--region") {
			argv = append(argv, "--region", region)
		}
	case S5cmd:
		if endpoint != "" {
			argv = slices.Insert(argv, 1, "--endpoint-url", endpoint)
		}
	}

	return argv
}
