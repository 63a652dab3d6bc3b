package model

import "time"

// ReportStatus is the outcome of a verification run.
type ReportStatus string

var (
	// ReportLinked marks a run where every consecutive pair linked.
	ReportLinked ReportStatus = "linked"
	// ReportChainBreak marks a run that stopped at a mismatched previous hash.
	ReportChainBreak ReportStatus = "chain_break"
)

// Report is the persisted summary of one verification run. Hashes are hex
// in RPC byte order.
type Report struct {
	RunID        string
	Network      Network
	Source       string
	FromHeight   uint32
	ToHeight     uint32
	Headers      uint32
	Links        uint32
	Status       ReportStatus
	BreakHeight  uint32
	ExpectedHash string
	ActualHash   string
	CreatedAt    time.Time
}

// LinkCheck is the persisted outcome of one header pair.
type LinkCheck struct {
	RunID            string
	Network          Network
	Height           uint32
	PrevHeight       uint32
	Hash             string
	ExpectedPrevHash string
	ActualPrevHash   string
	Linked           bool
	CreatedAt        time.Time
}
