// nolint: revive
package utils

import (
	// 外部依赖
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

func SafelyRun(function func()) (err error) {
	// 返回是否成功执行
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w\n%s", e, string(debug.Stack()))
			} else {
				err = fmt.Errorf("unknown panic\n%s", string(debug.Stack()))
			}
		}
	}()

	function()

	return nil
}

func SafelyGo(function func(), handleError func(error)) {
	go func() {
		err := SafelyRun(function)
		if err != nil {
			handleError(err)
		}
	}()
}

func SetupSignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
		<-ch
		os.Exit(1)
	}()

	return ctx
}
