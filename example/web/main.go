package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vearne/cotask"
)

var (
	spawner *cotask.Spawner
)

type TaskParam struct {
	DelayMs int `json:"delay_ms"`
}

func delayedJob(id int, d time.Duration) cotask.Pollable {
	var timer *cotask.TimerFuture
	return cotask.PollFunc(func(w cotask.Waker) (*cotask.PollResult, bool) {
		if timer == nil {
			fmt.Printf("job %v started, delay %v\n", id, d)
			timer = cotask.NewTimerFuture(d)
		}
		res, ready := timer.Poll(w)
		if ready {
			fmt.Printf("job %v finished\n", id)
		}
		return res, ready
	})
}

/*
	curl -XPOST http://localhost:8080/api/task -d '{"delay_ms":1500}'
	curl -XPOST http://localhost:8080/api/task -d '{"delay_ms":3000}'
*/
func main() {
	executor, s := cotask.NewExecutorAndSpawner(cotask.WithTaskQueueCap(100))
	spawner = s

	done := make(chan struct{})
	go func() {
		executor.Run()
		close(done)
	}()

	counter := 0
	r := gin.Default()
	r.POST("/api/task", func(c *gin.Context) {
		p := TaskParam{}
		c.BindJSON(&p)
		counter++
		_, err := spawner.Spawn(delayedJob(counter, time.Duration(p.DelayMs)*time.Millisecond))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code": 1,
				"msg":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code": 0,
			"msg":  "submit success",
		})
	})

	go func() { log.Fatal(r.Run(":8080")) }()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	<-ch
	// stop accepting tasks and wait for the in-flight ones
	spawner.Close()
	<-done
}
