package remote_test

import "fmt"

type NavigatorMock struct {
	Calls []string
	Total int
	pos   int
}

func (n *NavigatorMock) Next() int {
	n.Calls = append(n.Calls, "next")
	n.pos = min(n.pos+1, n.Total-1)

	return n.pos
}

func (n *NavigatorMock) Prev() int {
	n.Calls = append(n.Calls, "prev")
	n.pos = max(n.pos-1, 0)

	return n.pos
}

func (n *NavigatorMock) First() int {
	n.Calls = append(n.Calls, "first")
	n.pos = 0

	return n.pos
}

func (n *NavigatorMock) Last() int {
	n.Calls = append(n.Calls, "last")
	n.pos = n.Total - 1

	return n.pos
}

func (n *NavigatorMock) Goto(index int) error {
	n.Calls = append(n.Calls, fmt.Sprintf("goto %d", index))
	if index >= n.Total {
		return fmt.Errorf("index %d out of range", index)
	}

	n.pos = index

	return nil
}
