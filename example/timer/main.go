package main

import (
	"fmt"
	"time"

	"github.com/vearne/cotask"
)

// sayWithDelay prints before, waits on a timer without blocking the
// executor, then prints after.
func sayWithDelay(before, after string, d time.Duration) cotask.Pollable {
	var timer *cotask.TimerFuture
	return cotask.PollFunc(func(w cotask.Waker) (*cotask.PollResult, bool) {
		if timer == nil {
			fmt.Println(before)
			timer = cotask.NewTimerFuture(d)
		}
		res, ready := timer.Poll(w)
		if ready {
			fmt.Println(after)
		}
		return res, ready
	})
}

func main() {
	executor, spawner := cotask.NewExecutorAndSpawner()

	spawner.Spawn(sayWithDelay("howdy!", "done!", 2*time.Second))
	spawner.Spawn(sayWithDelay("howdy 2!", "done 2!", 2*time.Second))

	// no more top-level tasks; Run returns once both tasks complete
	spawner.Close()
	executor.Run()
}
