// Package cli implements the keypoints command line tool.
//
// Commands load a store from data files (--data, or KEYPOINTS_DATA), apply
// widget settings from an optional config file and KEYPOINTS_* variables,
// and print the widget output for one item.
package cli
