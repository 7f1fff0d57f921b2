// Package classifier provides cat detectors for camera images.
//
// The engine only needs a yes/no answer for an image and a confidence
// threshold, so real models stay behind the Service interface. FakeService
// answers pseudo-randomly and StaticService always gives the same answer.
package classifier
