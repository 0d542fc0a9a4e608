package devseed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleApplicantsPassValidation(t *testing.T) {
	require.NotEmpty(t, sampleApplicants)

	seen := make(map[string]bool, len(sampleApplicants))
	for i := range sampleApplicants {
		req := sampleApplicants[i]
		require.NoError(t, req.Validate(), "sample applicant %s", req.Email)
		require.False(t, seen[req.Email], "duplicate sample email %s", req.Email)
		seen[req.Email] = true
	}
}
