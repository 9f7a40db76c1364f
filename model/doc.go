// Package model decodes YAML model files into Bayesian networks and factor
// graphs. Files are read-only input; nothing is ever written back.
//
// Schema (all domain values are strings; quote numeric-looking ones):
//
//	variables:
//	  - {name: X, domain: ["0", "1"]}
//	cpts:
//	  - child: Z
//	    parents: [X, Y]
//	    table:
//	      - {values: ["0", "0", "0"], p: 0.99}
//	factors:
//	  - scope: [X, Y]
//	    table:
//	      - {values: ["0", "1"], p: 2.5}
//	evidence:
//	  Z: "1"
//
// CPT rows list the parent values followed by the child value. Raw factors
// take arbitrary non-negative weights. Unknown keys are rejected.
package model
