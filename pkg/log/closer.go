package log

import (
	"errors"
	"io"
	"sync"
)

// closer Setup이 생성한 로그 파일들을 한 번에 정리합니다.
// hook을 먼저 닫아 닫힌 파일로의 쓰기를 막은 뒤, 파일을 Sync 후 Close 합니다.
// 일부 파일 닫기에 실패해도 나머지 파일은 모두 닫으며, 두 번째 호출부터는 아무 일도 하지 않습니다.
type closer struct {
	closers []io.Closer
	hook    *hook

	once sync.Once
	err  error
}

func (c *closer) Close() error {
	c.once.Do(func() {
		if c.hook != nil {
			_ = c.hook.Close()
		}

		for _, rc := range c.closers {
			if rc == nil {
				continue
			}
			if s, ok := rc.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
			if err := rc.Close(); err != nil {
				c.err = errors.Join(c.err, err)
			}
		}
	})

	return c.err
}
