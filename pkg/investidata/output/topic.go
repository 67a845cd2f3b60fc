package output

import (
	"errors"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// ErrUnknownTopic indicates a topic outside the closed topic set.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic selects one view of a report.
type Topic string

// Topics besides TopicSummary name the category they show.
const (
	TopicSummary   Topic = "summary"
	TopicDevice    Topic = Topic(models.CategoryDevice)
	TopicMessages  Topic = Topic(models.CategoryMessages)
	TopicContacts  Topic = Topic(models.CategoryContacts)
	TopicLocations Topic = Topic(models.CategoryLocations)
	TopicApps      Topic = Topic(models.CategoryApps)
	TopicAccounts  Topic = Topic(models.CategoryAccounts)
	TopicCalls     Topic = Topic(models.CategoryCalls)
	TopicWeb       Topic = Topic(models.CategoryWeb)
)

// Topics returns every topic in menu order.
func Topics() []Topic {
	return []Topic{
		TopicSummary, TopicDevice, TopicMessages, TopicContacts,
		TopicLocations, TopicApps, TopicAccounts, TopicCalls, TopicWeb,
	}
}

// Valid reports whether t is one of Topics.
func (t Topic) Valid() bool {
	for _, v := range Topics() {
		if t == v {
			return true
		}
	}
	return false
}
