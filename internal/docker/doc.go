// Package docker decodes the optional docker block of a document's front
// matter and renders it as the KEY=value lines read by the render script.
//
// The recognized shape is:
//
//	docker:
//	  image: rocker/verse:4.4
//	  options:
//	    - --rm
//	    - -v
//	    - /data:/data
//
// Shapes that do not fit are ignored rather than rejected: a non-string
// image, a non-sequence options value, and non-string option entries
// produce no output.
package docker
