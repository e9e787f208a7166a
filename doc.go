// Package ratings is a small in-memory toolkit for user×item rating data.
//
// What is inside?
//
//	sparse/ — fixed-shape sparse rating matrix: bounds-checked Set/Get,
//	          matrix–vector recommendation, additive merge, dense export
//	          and stable top-N ranking of items.
//
// Quick ASCII example (rows = users, cols = movies):
//
//	        m0  m1  m2
//	  u0 [   5   2   . ]
//	  u1 [   .   4   1 ]
//	  u2 [   .   .   3 ]
//
// only the five rated cells are stored.
//
//	go get github.com/katalvlaran/ratings/sparse
package ratings
