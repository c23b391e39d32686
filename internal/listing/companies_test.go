package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donationDB/Donation-Web/internal/models"
)

func TestCompanies_GroupsAndOrdersPrograms(t *testing.T) {
	c1 := "C1"
	companies := []models.Company{
		{CompanyID: "C1", CompanyName: "한빛재단", Contact: "02-000-0000", Address: "서울"},
		{CompanyID: "C2", CompanyName: "Green Corp", Address: "Busan"},
	}
	programs := []models.Program{
		{ProgramID: "P1", ProgramName: "old name", CompanyID: &c1, EndDate: day("2025-01-01")},
		{ProgramID: "P2", CompanyID: &c1, EndDate: day("2024-01-01")},
		{ProgramID: "P1", ProgramName: "new name", CompanyID: &c1, EndDate: day("2025-01-01")},
		{ProgramID: "P9"},
	}

	got := Companies(companies, programs, "")
	require.Len(t, got, 2)
	require.Equal(t, []string{"P2", "P1"}, ids(got[0].Programs))
	require.Equal(t, "new name", got[0].Programs[1].ProgramName)
	require.NotNil(t, got[1].Programs)
	require.Empty(t, got[1].Programs)
	require.Nil(t, companies[0].Programs)
}

func TestCompanies_Keyword(t *testing.T) {
	companies := []models.Company{
		{CompanyID: "C1", CompanyName: "한빛재단", Address: "서울"},
		{CompanyID: "C2", CompanyName: "Green Corp", Address: "Busan"},
	}
	got := Companies(companies, nil, "busan")
	require.Len(t, got, 1)
	require.Equal(t, "C2", got[0].CompanyID)

	require.Empty(t, Companies(companies, nil, "nowhere"))
}
