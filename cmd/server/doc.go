// Command server runs the key points widget HTTP service.
//
// Configuration comes from the environment (PORT, HOST, LOG_LEVEL,
// KEYPOINTS_DATA, KEYPOINTS_VIEW, ...) and may be overridden by flags:
//
//	server -port 8000 -data 'data/**/*.yaml'
package main
