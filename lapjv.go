package camttc

import (
	"errors"
)

// large is the sentinel cost used in place of infinity by the solver
const large = 1000000.0

// solveAssignment solves the linear assignment problem for the given square
// cost matrix using the Jonker-Volgenant algorithm (LAPJV), returning for
// each row the column assigned to it at minimum total cost
func solveAssignment(cost [][]float64) ([]int, error) {

	n := len(cost)

	rowSol := make([]int, n)
	colSol := make([]int, n)

	if n == 0 {
		return rowSol, nil
	}

	freeRows := make([]int, n)
	v := make([]float64, n)

	ret := columnReduction(n, cost, freeRows, rowSol, colSol, v)

	for i := 0; ret > 0 && i < 2; i++ {
		ret = augmentingRowReduction(n, cost, ret, freeRows, rowSol, colSol, v)
	}

	if ret > 0 {
		if err := augmentSolution(n, cost, ret, freeRows, rowSol, colSol, v); err != nil {
			return nil, err
		}
	}

	return rowSol, nil
}

// columnReduction performs column reduction and reduction transfer for a
// dense cost matrix, returning the number of unassigned rows
func columnReduction(n int, cost [][]float64, freeRows, rowSol, colSol []int,
	v []float64) int {

	unique := make([]bool, n)

	for i := 0; i < n; i++ {
		rowSol[i] = -1
		v[i] = large
		colSol[i] = 0
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := cost[i][j]
			if c < v[j] {
				v[j] = c
				colSol[j] = i
			}
		}
	}

	for i := 0; i < n; i++ {
		unique[i] = true
	}

	j := n

	for j > 0 {
		j--
		i := colSol[j]
		if rowSol[i] < 0 {
			rowSol[i] = j
		} else {
			unique[i] = false
			colSol[j] = -1
		}
	}

	nFreeRows := 0

	for i := 0; i < n; i++ {

		if rowSol[i] < 0 {
			freeRows[nFreeRows] = i
			nFreeRows++

		} else if unique[i] {

			j := rowSol[i]
			minVal := large

			for j2 := 0; j2 < n; j2++ {
				if j2 == j {
					continue
				}

				c := cost[i][j2] - v[j2]

				if c < minVal {
					minVal = c
				}
			}

			v[j] -= minVal
		}
	}

	return nFreeRows
}

// augmentingRowReduction performs augmenting row reduction for a dense cost
// matrix, returning the remaining number of unassigned rows
func augmentingRowReduction(n int, cost [][]float64, nFreeRows int, freeRows,
	rowSol, colSol []int, v []float64) int {

	current := 0
	newFreeRows := 0
	rrCnt := 0

	for current < nFreeRows {

		rrCnt++
		freeI := freeRows[current]
		current++

		// find the two columns with minimum reduced cost in this row
		j1 := 0
		v1 := cost[freeI][0] - v[0]
		j2 := -1
		v2 := large

		for j := 1; j < n; j++ {
			c := cost[freeI][j] - v[j]
			if c < v2 {
				if c >= v1 {
					v2 = c
					j2 = j
				} else {
					v2 = v1
					v1 = c
					j2 = j1
					j1 = j
				}
			}
		}

		i0 := colSol[j1]
		v1New := v[j1] - (v2 - v1)
		v1Lowers := v1New < v[j1]

		if rrCnt < current*n {
			if v1Lowers {
				v[j1] = v1New
			} else if i0 >= 0 && j2 >= 0 {
				j1 = j2
				i0 = colSol[j2]
			}

			if i0 >= 0 {
				if v1Lowers {
					current--
					freeRows[current] = i0
				} else {
					freeRows[newFreeRows] = i0
					newFreeRows++
				}
			}
		} else {
			if i0 >= 0 {
				freeRows[newFreeRows] = i0
				newFreeRows++
			}
		}

		rowSol[freeI] = j1
		colSol[j1] = freeI
	}

	return newFreeRows
}

// minColumns finds the columns with minimum d[j] and puts them on the SCAN
// list, returning the new upper bound of the list
func minColumns(n int, lo int, d []float64, cols, colSol []int) int {

	hi := lo + 1
	mind := d[cols[lo]]

	for k := hi; k < n; k++ {

		j := cols[k]

		if d[j] <= mind {
			if d[j] < mind {
				hi = lo
				mind = d[j]
			}

			cols[k] = cols[hi]
			cols[hi] = j
			hi++
		}
	}

	return hi
}

// scanColumns scans the TODO columns and tries to decrease their d value
// using the columns on the SCAN list, returning an unassigned column when
// one becomes reachable at minimum cost
func scanColumns(n int, cost [][]float64, lo, hi *int, d []float64,
	cols, pred, colSol []int, v []float64) int {

	for *lo != *hi {

		j := cols[*lo]
		*lo++
		i := colSol[j]
		mind := d[j]
		h := cost[i][j] - v[j] - mind

		for k := *hi; k < n; k++ {
			j = cols[k]
			credIJ := cost[i][j] - v[j] - h

			if credIJ < d[j] {
				d[j] = credIJ
				pred[j] = i

				if credIJ == mind {
					if colSol[j] < 0 {
						return j
					}

					cols[k] = cols[*hi]
					cols[*hi] = j
					(*hi)++
				}
			}
		}
	}

	return -1
}

// shortestAugmentingPath performs a single iteration of the modified
// Dijkstra shortest path search of the JV algorithm for a dense cost
// matrix, returning the endpoint column of the augmenting path
func shortestAugmentingPath(n int, cost [][]float64, startI int, colSol []int,
	v []float64, pred []int) int {

	lo := 0
	hi := 0
	finalJ := -1
	nReady := 0
	cols := make([]int, n)
	d := make([]float64, n)

	for i := 0; i < n; i++ {
		cols[i] = i
		pred[i] = startI
		d[i] = cost[startI][i] - v[i]
	}

	for finalJ == -1 {

		// no columns left on the SCAN list
		if lo == hi {
			nReady = lo
			hi = minColumns(n, lo, d, cols, colSol)

			for k := lo; k < hi; k++ {
				j := cols[k]

				if colSol[j] < 0 {
					finalJ = j
				}
			}
		}

		if finalJ == -1 {
			finalJ = scanColumns(n, cost, &lo, &hi, d, cols, pred, colSol, v)
		}
	}

	mind := d[cols[lo]]

	for k := 0; k < nReady; k++ {
		j := cols[k]
		v[j] += d[j] - mind
	}

	return finalJ
}

// augmentSolution augments the partial assignment along shortest paths for
// each remaining free row
func augmentSolution(n int, cost [][]float64, nFreeRows int, freeRows,
	rowSol, colSol []int, v []float64) error {

	pred := make([]int, n)

	for _, freeI := range freeRows[:nFreeRows] {

		i := -1
		k := 0

		j := shortestAugmentingPath(n, cost, freeI, colSol, v, pred)

		if j < 0 || j >= n {
			return errors.New("augmenting path ended outside the matrix")
		}

		for i != freeI {

			i = pred[j]
			colSol[j] = i
			j, rowSol[i] = rowSol[i], j
			k++

			if k >= n {
				return errors.New("augmenting path longer than matrix order")
			}
		}
	}

	return nil
}
