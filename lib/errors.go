//----------------------------------------------------------------------
// This file is part of eapgain.
// Copyright (C) 2026-present eapgain authors
//
// eapgain is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// eapgain is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import "errors"

// Error kinds returned by the engine. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX) so errors.Is still matches while the
// message carries the offending value.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPatternNotFound   = errors.New("antenna pattern not found")
	ErrPatternMalformed  = errors.New("antenna pattern malformed")
	ErrPatternIncomplete = errors.New("antenna pattern incomplete")
	ErrInternalInvariant = errors.New("internal invariant violated")
)
