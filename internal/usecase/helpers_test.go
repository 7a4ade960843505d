package usecase_test

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/usecase/mocks"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegisterer(prometheus.NewRegistry())
}

// passthroughRetrier returns a Retrier mock that runs each operation once.
func passthroughRetrier(ctrl *gomock.Controller) *mocks.MockRetrier {
	r := mocks.NewMockRetrier(ctrl)
	r.EXPECT().Retry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op func() error) error { return op() }).
		AnyTimes()
	return r
}
