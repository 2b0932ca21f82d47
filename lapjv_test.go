package camttc

import (
	"testing"
)

func runAssignmentTest(t *testing.T, costMatrix [][]float64, expected []int) {

	rowSol, err := solveAssignment(costMatrix)

	if err != nil {
		t.Fatalf("solveAssignment returned an error: %v", err)
	}

	for i := range expected {
		if rowSol[i] != expected[i] {
			t.Errorf("Expected rowSol[%d] = %d, but got %d",
				i, expected[i], rowSol[i])
		}
	}
}

func TestSolveAssignment(t *testing.T) {

	costMatrix1 := [][]float64{
		{4, 1, 3, 2},
		{2, 0, 5, 3},
		{3, 2, 2, 3},
		{2, 3, 3, 2},
	}

	expected1 := []int{3, 1, 2, 0}

	costMatrix2 := [][]float64{
		{10, 19, 8, 15},
		{10, 18, 7, 17},
		{13, 16, 9, 14},
		{12, 19, 8, 18},
	}

	expected2 := []int{3, 0, 1, 2}

	t.Run("Test Case 1", func(t *testing.T) {
		runAssignmentTest(t, costMatrix1, expected1)
	})

	t.Run("Test Case 2", func(t *testing.T) {
		runAssignmentTest(t, costMatrix2, expected2)
	})
}

func TestSolveAssignmentEmpty(t *testing.T) {

	rowSol, err := solveAssignment(nil)

	if err != nil {
		t.Fatalf("solveAssignment returned an error: %v", err)
	}

	if len(rowSol) != 0 {
		t.Errorf("Expected empty solution, got %v", rowSol)
	}
}
