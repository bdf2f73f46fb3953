// Package preset loads named camera configurations from YAML.
//
// A preset file lists cameras with a field of view in degrees or radians,
// an aspect ratio and clip planes. An optional expected matrix turns the
// file into a golden fixture:
//
//	cameras:
//	  - name: wide
//	    fov_deg: 60
//	    aspect: 1.5
//	    near: 1
//	    far: 10
//	    expected:
//	      - [1.1547005, 0, 0, 0]
//	      - [0, 1.7320508, 0, 0]
//	      - [0, 0, -1.2222222, -2.2222222]
//	      - [0, 0, -1, 0]
//
// Loading checks structure only. Numeric domains are enforced by the
// perspective package when the matrices are built.
package preset
