// Package batch wires the name composer and attribute writer into the
// batch-apply pipeline: validate the request, compose N names, and upsert
// each name onto each target container in order.
package batch
