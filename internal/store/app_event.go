package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAppEvent(ctx context.Context, data AppEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AppEvent.Create().
		SetSequence(seqNum).
		SetName(data.Name)

	if len(data.Params) > 0 {
		builder = builder.SetParams(data.Params)
	}

	if _, err = builder.Save(ctx); err != nil {
		return fmt.Errorf("save app event: %w", err)
	}
	return nil
}
