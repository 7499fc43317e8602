/*
Package struck implements Struck: Structured Output Tracking with
Kernels, an online structured-output SVM tracker for a single object in
a video sequence.

Struck treats tracking as structured prediction: rather than a binary
classifier voting on candidate boxes, it learns a discriminant function
over (image patch, translation) pairs directly, trained online via an
adapted LaRank algorithm as the target moves from frame to frame. See
the paper this repository's learner package is grounded on:

	Struck: Structured Output Tracking with Kernels
	Sam Hare, Amir Saffari, Philip H. S. Torr
	International Conference on Computer Vision (ICCV), 2011

A Tracker wires together a features.Extractor, a kernel.Function, and a
learner.Learner behind the sampler package's candidate generation. See
cmd/struck for a runnable frame-by-frame driver, and cmd/struck-analyze
for the offline IoU-scoring utility.
*/
package struck
