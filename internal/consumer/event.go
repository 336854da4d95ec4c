package consumer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// DictionaryChanged is the payload of a dictionary change event.
// AssetPairIDs is informational: any event drops the whole catalog.
type DictionaryChanged struct {
	AssetPairIDs []string  `json:"assetPairIds,omitempty"`
	ChangedAt    time.Time `json:"changedAt"`
}

// NewDictionaryChangedMessage builds the kafka message announcing a change of ids.
func NewDictionaryChangedMessage(assetPairIDs []string, at time.Time) (kafka.Message, error) {
	value, err := json.Marshal(DictionaryChanged{AssetPairIDs: assetPairIDs, ChangedAt: at.UTC()})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strings.Join(assetPairIDs, ",")),
		Value: value,
		Time:  at,
	}, nil
}

func decodeDictionaryChanged(msg kafka.Message) (DictionaryChanged, bool) {
	var event DictionaryChanged
	if len(msg.Value) == 0 || json.Unmarshal(msg.Value, &event) != nil {
		return DictionaryChanged{}, false
	}
	return event, true
}
