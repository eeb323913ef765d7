// Package logutil provides loggers for the debug log.
//
// Loggers write nowhere until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out          = io.Discard
	outFile      *os.File
	loggersMutex sync.Mutex
	loggers      []*log.Logger
)

// GetLogger returns a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) {
	setOutput(newout, nil)
}

func setOutput(newout io.Writer, newFile *os.File) {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	if outFile != nil {
		outFile.Close()
	}
	out, outFile = newout, newFile
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. The file is truncated. An empty name turns logging off.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	setOutput(file, file)
	return nil
}
