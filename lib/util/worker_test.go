package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	const n = 1000
	workers := NewWorkerPool[Job[int], int](8, n)

	for i := 0; i < n; i++ {
		workers.AddJob(Job[int]{ID: i, JobItem: i})
	}
	workers.Close()

	workers.Start(func(job Job[int]) int {
		return job.JobItem * 2
	})
	workers.Wait()

	sum := 0
	count := 0
	for res := range workers.CollectResults() {
		sum += res
		count++
	}
	assert.Equal(t, n, count)
	assert.Equal(t, n*(n-1), sum)
}
