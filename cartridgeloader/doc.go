// This file is part of JollyCV-Core.
//
// JollyCV-Core is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// JollyCV-Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with JollyCV-Core.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader fetches BIOS and ROM images from a local file or
// an HTTP URL and validates them against §4.9/§6's rules before handing a
// usable *cartridge.Cartridge (or, for the BIOS, a raw byte slice) to the
// caller. Fetching and validating are split into two steps so that a
// frontend can re-validate data it already has in memory without going
// through Loader at all.
package cartridgeloader
