// Package eventlog is the append-only record of combat events, one line per
// event.
package eventlog

import (
	"io"
	"strings"

	"github.com/vincent-heng/rpgsim/game/util"
)

type Log struct {
	w io.WriteCloser
}

// Open opens fileName in append mode for the lifetime of the returned Log
func Open(fileName string) (*Log, error) {
	f, err := util.OpenAppend(fileName)
	if err != nil {
		return nil, err
	}
	return &Log{w: f}, nil
}

// Append writes line newline-terminated. Embedded newlines are flattened so
// one event always stays on one line.
func (l *Log) Append(line string) error {
	line = strings.ReplaceAll(line, "\n", " ")
	_, err := io.WriteString(l.w, line+"\n")
	return err
}

func (l *Log) Close() error {
	return l.w.Close()
}
