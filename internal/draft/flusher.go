package draft

import (
	"fmt"
	"time"

	"github.com/SlpAus/frc-scouting-backend/internal/platform/database"
	"github.com/SlpAus/frc-scouting-backend/pkg/lifecycle"
)

// flushInterval 是后台冲刷的轮询间隔
const flushInterval = 5 * time.Second

// StartFlusher 启动后台草稿冲刷器，应当在一个独立的Goroutine中运行。
// 它响应两阶段停机：收到优雅停机信号后做最后一轮冲刷再退出，
// 强制停机信号会直接中断这轮收尾。
func StartFlusher(gracefulHandle, forcefulHandle *lifecycle.Handle) {
	defer gracefulHandle.Close()
	defer forcefulHandle.Close()
	fmt.Println("草稿冲刷器 (Draft Flusher) 已启动。")

	for {
		select {
		case <-gracefulHandle.Done():
			fmt.Println("Draft Flusher: 收到优雅停机信号，执行最后一轮冲刷...")
			finalFlush(forcefulHandle)
			fmt.Println("Draft Flusher: 优雅停机完成，退出。")
			return
		default:
			if database.IsRedisHealthy() {
				if _, err := FlushOnce(gracefulHandle.Ctx()); err != nil {
					fmt.Printf("警告: 草稿冲刷失败: %v\n", err)
				}
			}
			if err := gracefulHandle.Sleep(flushInterval); err != nil {
				// 休眠被停机信号打断，回到select进入收尾分支
				continue
			}
		}
	}
}

// finalFlush 在停机收尾时尽力清空队列，受强制停机信号约束
func finalFlush(forcefulHandle *lifecycle.Handle) {
	select {
	case <-forcefulHandle.Done():
		fmt.Println("Draft Flusher: 收到强制停机信号，放弃最后一轮冲刷。")
		return
	default:
	}

	if !database.IsRedisHealthy() {
		fmt.Println("Draft Flusher: Redis不可用，跳过最后一轮冲刷。")
		return
	}

	flushed, err := FlushOnce(forcefulHandle.Ctx())
	if err != nil {
		fmt.Printf("Draft Flusher: 最后一轮冲刷失败: %v\n", err)
		return
	}
	fmt.Printf("Draft Flusher: 最后一轮冲刷完成，落库 %d 条草稿。\n", flushed)
}
