package store

import (
	"context"
	"fmt"
)

const keySearchRecords = "soundx:search-records"

// maxSearchRecords caps the recent-search list.
const maxSearchRecords = 50

// PushSearchRecord prepends a search query to the recent-search list,
// deduplicating and trimming to the cap.
func PushSearchRecord(ctx context.Context, query string) error {
	if Client == nil {
		return fmt.Errorf("store not connected")
	}
	if query == "" {
		return nil
	}
	pipe := Client.TxPipeline()
	pipe.LRem(ctx, keySearchRecords, 0, query)
	pipe.LPush(ctx, keySearchRecords, query)
	pipe.LTrim(ctx, keySearchRecords, 0, maxSearchRecords-1)
	_, err := pipe.Exec(ctx)
	return err
}

// SearchRecords returns the recent searches, newest first.
func SearchRecords(ctx context.Context) ([]string, error) {
	if Client == nil {
		return nil, nil
	}
	return Client.LRange(ctx, keySearchRecords, 0, -1).Result()
}

// ClearSearchRecords drops the whole list.
func ClearSearchRecords(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Del(ctx, keySearchRecords).Err()
}
