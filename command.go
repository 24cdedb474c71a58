package main

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandInput is the buffer of the ':' command line.
type CommandInput struct {
	buf string
}

// command is a parsed command line.
type command struct {
	name string
	id   int
	a, b int
	text string
}

// parseCommand understands:
//
//	add [title]
//	close [id]
//	move <id> <x> <y>
//	resize <id> <width> <height>
//	select <id>
//
// close without an id targets the selected panel and reports id 0.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}
	c := command{name: strings.ToLower(fields[0])}
	args := fields[1:]

	switch c.name {
	case "add":
		c.text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		return c, nil
	case "select":
		if len(args) != 1 {
			return command{}, fmt.Errorf("usage: select <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return command{}, fmt.Errorf("invalid id %q", args[0])
		}
		c.id = id
		return c, nil
	case "close":
		if len(args) > 1 {
			return command{}, fmt.Errorf("usage: close [id]")
		}
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return command{}, fmt.Errorf("invalid id %q", args[0])
			}
			c.id = id
		}
		return c, nil
	case "move", "resize":
		if len(args) != 3 {
			if c.name == "move" {
				return command{}, fmt.Errorf("usage: move <id> <x> <y>")
			}
			return command{}, fmt.Errorf("usage: resize <id> <width> <height>")
		}
		n := make([]int, 3)
		for i, s := range args {
			v, err := strconv.Atoi(s)
			if err != nil {
				return command{}, fmt.Errorf("invalid number %q", s)
			}
			n[i] = v
		}
		c.id, c.a, c.b = n[0], n[1], n[2]
		return c, nil
	}
	return command{}, fmt.Errorf("unknown command %q", c.name)
}
