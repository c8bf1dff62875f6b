// SPDX-License-Identifier: MIT

package hyper

// GatherOptionsForTest exposes gatherOptions to the external test package.
func GatherOptionsForTest(opts ...Option) Options { return gatherOptions(opts...) }
