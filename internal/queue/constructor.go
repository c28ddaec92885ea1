package queue

import (
	"github.com/tradeflows/promoflow/internal/scheduler"
)

type Queue struct {
	engine *scheduler.Engine
}

func NewQueue(engine *scheduler.Engine) *Queue {
	return &Queue{engine: engine}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	PostID int64 `json:"post_id"`
}
