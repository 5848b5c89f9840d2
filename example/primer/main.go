package main

import (
	"fmt"

	"github.com/vearne/cotask"
)

// learnAndSing learns a song first, then sings it; dancing can happen at
// the same time inside the same task via Join.
func learnAndSing() cotask.Pollable {
	var song string
	learn := cotask.PollFunc(func(cotask.Waker) (*cotask.PollResult, bool) {
		song = "Heroes"
		fmt.Println("learned:", song)
		return &cotask.PollResult{Value: song}, true
	})
	sing := cotask.PollFunc(func(cotask.Waker) (*cotask.PollResult, bool) {
		fmt.Println("singing:", song)
		return &cotask.PollResult{}, true
	})
	return cotask.Seq(learn, sing)
}

func dance() cotask.Pollable {
	return cotask.PollFunc(func(cotask.Waker) (*cotask.PollResult, bool) {
		fmt.Println("dance!")
		return &cotask.PollResult{}, true
	})
}

func main() {
	executor, spawner := cotask.NewExecutorAndSpawner()

	f, err := spawner.Spawn(cotask.Join(learnAndSing(), dance()))
	if err != nil {
		panic(err)
	}
	spawner.Close()
	executor.Run()

	result := f.Get()
	fmt.Println(result.Err, result.Value)
}
