package augmentor

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCall(t *testing.T) {
	okBefore := testutil.ToFloat64(requestsTotal.WithLabelValues("test", "ok"))
	errBefore := testutil.ToFloat64(requestsTotal.WithLabelValues("test", "error"))

	RecordCall("test", 10*time.Millisecond, nil)
	RecordCall("test", 20*time.Millisecond, errors.New("down"))
	RecordCall("test", 5*time.Millisecond, nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(requestsTotal.WithLabelValues("test", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(requestsTotal.WithLabelValues("test", "error")))
}
