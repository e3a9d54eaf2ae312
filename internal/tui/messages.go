package tui

import "github.com/taigrr/folder-archiver/internal/types"

type relocationDoneMsg struct {
	result types.MoveResult
	err    error
}
