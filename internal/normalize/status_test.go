package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_ResolvesBothGenerations(t *testing.T) {
	tests := []struct {
		raw  string
		want Pair
	}{
		{"planned", Pair{StatusPlanned, "계획"}},
		{"  RUNNING ", Pair{StatusRunning, "진행 중"}},
		{"finished", Pair{StatusFinished, "종료"}},
		{"pending", Pair{StatusPlanned, "계획"}},
		{"IN_PROGRESS", Pair{StatusRunning, "진행 중"}},
		{"in progress", Pair{StatusRunning, "진행 중"}},
		{"completed", Pair{StatusFinished, "종료"}},
		{"rejected", Pair{StatusRejected, "반려"}},
		{"승인 전", Pair{StatusPlanned, "계획"}},
		{"승인전", Pair{StatusPlanned, "계획"}},
		{"진행 중", Pair{StatusRunning, "진행 중"}},
		{"진행  중", Pair{StatusRunning, "진행 중"}},
		{"진행 완료", Pair{StatusFinished, "종료"}},
		{"반려", Pair{StatusRejected, "반려"}},
		{"approved", Pair{StatusRunning, "진행 중"}},
		{"Approved", Pair{StatusRunning, "진행 중"}},
		{"", Pair{StatusPlanned, "계획"}},
		{"On Hold", Pair{"on_hold", "on_hold"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, Status(tt.raw))
		})
	}
}

func TestStatus_Idempotent(t *testing.T) {
	inputs := []string{
		"planned", "running", "finished", "rejected",
		"pending", "approved", "in_progress", "completed",
		"PENDING", "IN_PROGRESS", "COMPLETED",
		"승인 전", "승인 완료", "반려", "진행 중", "진행 완료", "계획", "종료",
		"draft", "done", "On Hold", "", "  ",
	}
	for _, raw := range inputs {
		once := Status(raw)
		require.Equal(t, once.Code, Status(once.Code).Code, "code of %q", raw)
		require.Equal(t, once, Status(once.Label), "label of %q", raw)
		if IsStatus(once.Code) {
			require.Equal(t, once, Status(once.Code), "code of %q", raw)
		}
	}
}

func TestStatusVariants_CoverAliasesAndLabels(t *testing.T) {
	variants := StatusVariants(StatusPlanned)
	require.Contains(t, variants, "planned")
	require.Contains(t, variants, "pending")
	require.Contains(t, variants, "계획")
	require.Contains(t, variants, "승인 전")
	require.NotContains(t, variants, "running")

	for _, v := range variants {
		require.Equal(t, StatusPlanned, Status(v).Code, "variant %q", v)
		require.Equal(t, strings.ToLower(v), v, "variant %q", v)
	}
	require.Nil(t, StatusVariants("unknown"))
}

func TestStatusVariants_MatchAnyStoredCasing(t *testing.T) {
	stored := map[string]string{
		"Pending":     StatusPlanned,
		"PLANNED":     StatusPlanned,
		"Planned":     StatusPlanned,
		"In Progress": StatusRunning,
		"In_Progress": StatusRunning,
		"IN_PROGRESS": StatusRunning,
		" Approved ":  StatusRunning,
	}
	for raw, code := range stored {
		require.Equal(t, code, Status(raw).Code, raw)
		folded := strings.ToLower(strings.TrimSpace(raw))
		require.Contains(t, StatusVariants(code), folded, "stored %q", raw)
	}
}

func TestStatus_NovelValueKeepsRawLabel(t *testing.T) {
	got := Status("  On Hold ")
	require.Equal(t, Pair{Code: "on_hold", Label: "On Hold"}, got)
}
