// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

//go:build !resultabort

package result

// onViolation panics with the violation. Tests and callers that want to
// assert on misuse can recover the *ContractViolation; regular code should
// treat the panic as fatal. Build with the resultabort tag to terminate the
// process instead.
func onViolation(v *ContractViolation) {
	panic(v)
}
