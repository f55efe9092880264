package timetable

import (
	"fmt"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/fdcrail/railmanager/pkg/util"
)

// LineCollection owns the accepted railway lines.
type LineCollection struct {
	lines []*RailwayLine
	index map[string]*RailwayLine
}

func NewLineCollection() *LineCollection {
	return &LineCollection{index: map[string]*RailwayLine{}}
}

func (c *LineCollection) Add(line *RailwayLine) error {
	if c.index[line.ID] != nil {
		return fmt.Errorf("%w: line %q", railnet.ErrDuplicateID, line.ID)
	}

	c.lines = append(c.lines, line)
	c.index[line.ID] = line

	return nil
}

func (c *LineCollection) Remove(id string) error {
	if c.index[id] == nil {
		return fmt.Errorf("%w: line %q", railnet.ErrNotFound, id)
	}

	util.InPlaceFilter(&c.lines, func(line *RailwayLine) bool { return line.ID != id })
	delete(c.index, id)

	return nil
}

func (c *LineCollection) ByID(id string) *RailwayLine { return c.index[id] }

// All returns the lines in insertion order.
func (c *LineCollection) All() []*RailwayLine { return c.lines }

func (c *LineCollection) Count() int { return len(c.lines) }

// TrainCollection owns the trains and the monotonic counter behind train
// numbers. Numbers start above 1000 and never repeat within a session,
// which keeps them collision-free across lines sharing departure slots.
type TrainCollection struct {
	trains     []*Train
	index      map[string]*Train
	nextNumber int
}

func NewTrainCollection() *TrainCollection {
	return &TrainCollection{index: map[string]*Train{}, nextNumber: 1000}
}

// NextNumber hands out the next free train number.
func (c *TrainCollection) NextNumber() int {
	n := c.nextNumber
	c.nextNumber++

	return n
}

func (c *TrainCollection) Add(train *Train) error {
	if c.index[train.ID] != nil {
		return fmt.Errorf("%w: train %q", railnet.ErrDuplicateID, train.ID)
	}

	c.trains = append(c.trains, train)
	c.index[train.ID] = train

	if train.Number >= c.nextNumber {
		c.nextNumber = train.Number + 1
	}

	return nil
}

func (c *TrainCollection) Remove(id string) error {
	if c.index[id] == nil {
		return fmt.Errorf("%w: train %q", railnet.ErrNotFound, id)
	}

	util.InPlaceFilter(&c.trains, func(train *Train) bool { return train.ID != id })
	delete(c.index, id)

	return nil
}

func (c *TrainCollection) ByID(id string) *Train { return c.index[id] }

func (c *TrainCollection) All() []*Train { return c.trains }

func (c *TrainCollection) Count() int { return len(c.trains) }

// SweepOrphans removes trains whose line no longer exists and returns the
// removed train ids. Invoked explicitly by the collaborator after line
// deletion; line removal itself never cascades.
func (c *TrainCollection) SweepOrphans(lines *LineCollection) []string {
	var removed []string

	util.InPlaceFilter(&c.trains, func(train *Train) bool {
		if lines.ByID(train.LineID) != nil {
			return true
		}

		removed = append(removed, train.ID)
		delete(c.index, train.ID)

		return false
	})

	return removed
}
