// Package core holds small numeric and buffer helpers shared by the
// filter, convolution and reverb packages.
package core
