package probe

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"
)

const (
	// defaultMaxOutputSize stdout/stderr 각각에 대해 캡처하는 최대 크기입니다.
	// 초과분은 버려지고 끝에 "...(생략됨)" 표시가 추가됩니다.
	defaultMaxOutputSize = 1024 * 1024

	// defaultWaitDelay 프로세스 종료(또는 강제 종료) 후 출력 파이프가 닫히기를 기다리는 최대 시간입니다.
	// 파이프를 물고 있는 자손 프로세스가 남아 있어도 Wait가 이 시간 안에 반환되도록 합니다.
	defaultWaitDelay = 2 * time.Second
)

// commandProcess 실행 중인 프로브 프로세스를 제어하고 결과를 조회하는 인터페이스입니다.
type commandProcess interface {
	// Wait 프로세스가 종료되고 출력 파이프가 모두 닫힐 때까지 기다립니다.
	Wait() error

	// ExitCode Wait 이후의 종료 코드를 반환합니다. 시그널로 종료되었거나 아직 종료되지 않았으면 -1입니다.
	ExitCode() int

	Stdout() string
	Stderr() string
}

// defaultCommandProcess exec.Cmd를 감싸는 commandProcess 구현체입니다.
type defaultCommandProcess struct {
	cmd *exec.Cmd

	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

var _ commandProcess = (*defaultCommandProcess)(nil)

func (p *defaultCommandProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *defaultCommandProcess) ExitCode() int {
	if p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}

func (p *defaultCommandProcess) Stdout() string {
	return p.stdout.String()
}

func (p *defaultCommandProcess) Stderr() string {
	return p.stderr.String()
}

// commandExecutor 외부 명령 실행을 추상화합니다. 테스트에서는 Mock 구현체로 대체됩니다.
type commandExecutor interface {
	// Start 명령을 비동기로 실행하고 제어 핸들을 반환합니다.
	// ctx가 만료되면 프로세스(및 그 프로세스 그룹)는 강제 종료됩니다.
	Start(ctx context.Context, name string, args ...string) (commandProcess, error)
}

// defaultCommandExecutor os/exec로 실제 프로세스를 실행하는 기본 구현체입니다.
type defaultCommandExecutor struct {
	env []string // nil이면 서버의 환경 변수를 그대로 상속

	limit     int           // 출력 캡처 용량 (0이면 defaultMaxOutputSize)
	waitDelay time.Duration // 0이면 defaultWaitDelay
}

var _ commandExecutor = (*defaultCommandExecutor)(nil)

func (e *defaultCommandExecutor) Start(ctx context.Context, name string, args ...string) (commandProcess, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	// Stdin을 nil로 두면 null 장치가 연결됩니다.
	cmd.Stdin = nil

	if len(e.env) > 0 {
		cmd.Env = e.env
	}

	limit := e.limit
	if limit <= 0 {
		limit = defaultMaxOutputSize
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitWriter{w: &stdout, limit: limit}
	cmd.Stderr = &limitWriter{w: &stderr, limit: limit}

	cmd.WaitDelay = e.waitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = defaultWaitDelay
	}

	// 타임아웃 시 셸 스크립트가 띄운 자손 프로세스까지 함께 종료되도록 별도의 프로세스 그룹으로 실행합니다.
	configureProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &defaultCommandProcess{
		cmd:    cmd,
		stdout: &stdout,
		stderr: &stderr,
	}, nil
}

// limitWriter 지정된 크기까지만 기록하고 나머지는 버리는 Writer입니다.
// 처음으로 제한을 넘는 순간 "\n...(생략됨)" 표시를 한 번 기록합니다.
type limitWriter struct {
	w         io.Writer
	limit     int
	written   int
	truncated bool
}

const truncatedMarker = "\n...(생략됨)"

func (lw *limitWriter) Write(p []byte) (int, error) {
	remaining := lw.limit - lw.written
	if remaining < 0 {
		remaining = 0
	}

	chunk := p
	if len(chunk) > remaining {
		chunk = chunk[:remaining]
	}

	if len(chunk) > 0 {
		n, err := lw.w.Write(chunk)
		lw.written += n
		if err != nil {
			return n, err
		}
	}

	if len(p) > len(chunk) && !lw.truncated {
		lw.truncated = true
		if _, err := io.WriteString(lw.w, truncatedMarker); err != nil {
			return len(chunk), err
		}
	}

	// 버린 데이터도 처리한 것으로 보고해야 exec의 출력 복사가 중단되지 않습니다.
	return len(p), nil
}
