package main

import "github.com/chzyer/readline"

func newREPL() (*readline.Instance, error) {
	return readline.New("ll1tab> ")
}
