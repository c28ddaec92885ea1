package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// EnqueuePost schedules a one-off publish task. A zero delay publishes on the
// next worker pickup. The nanoid task id keeps duplicate manual submissions
// of the same post distinguishable in the asynq inspector and logs.
func EnqueuePost(asynqClient *asynq.Client, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	taskID, err := gonanoid.New()
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay), asynq.TaskID(taskID))
	if err != nil {
		return err
	}

	log.Printf("Publish task enqueued: %+v", payload)
	return nil
}
