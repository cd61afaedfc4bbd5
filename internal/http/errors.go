package http

import (
	"nginx-monitor/internal/shared/svcerrors"
)

const (
	codeSnapshotNotReady = "SNAP_1000"

	codeInvalidInterval = "SCH_1000"

	codeInternalSetIntervalFailed = "SCH_9000"
)

// errSnapshotNotReady is returned by GET /stats before the first cycle has been published.
func errSnapshotNotReady() *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSnapshotNotReady, "no snapshot has been collected yet", nil)
}

func errInvalidInterval(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInterval, msg, cause)
}

func errInternalSetIntervalFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSetIntervalFailed, cause)
}
