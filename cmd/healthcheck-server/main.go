package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError 실행 실패 원인을 w에 출력합니다.
func reportError(w io.Writer, err error) {
	var checkErr *checkFailedError
	if errors.As(err, &checkErr) {
		fmt.Fprintln(w, strings.TrimRight(checkErr.Message(), "\n"))
		return
	}

	fmt.Fprintf(w, "[FATAL] %v\n", err)
}
