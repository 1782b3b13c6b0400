package services

import (
	"context"

	"SoundX/model"
	"SoundX/store"
)

// Search history is local to the shell and independent of the bound backend.

func SaveSearchRecord(ctx context.Context, query string) (model.SuccessResponse[bool], error) {
	if err := store.PushSearchRecord(ctx, query); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}

func GetSearchRecords(ctx context.Context) (model.SuccessResponse[[]string], error) {
	records, err := store.SearchRecords(ctx)
	if err != nil {
		return model.SuccessResponse[[]string]{}, err
	}
	if records == nil {
		records = []string{}
	}
	return model.OK(records), nil
}

func ClearSearchRecords(ctx context.Context) (model.SuccessResponse[bool], error) {
	if err := store.ClearSearchRecords(ctx); err != nil {
		return model.SuccessResponse[bool]{}, err
	}
	return model.OK(true), nil
}
