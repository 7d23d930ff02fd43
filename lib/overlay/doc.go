// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package overlay implements the state machine behind every
// dropdown-like surface: menus, submenus, selects, comboboxes and
// context menus.
//
// A [Tree] is one interaction namespace. Each dropdown instance is a
// [Node] mounted into the tree, optionally under a parent node (a
// submenu). The tree assigns identity, keeps parent/child links, owns
// keyboard focus, and relays the cross-node events that keep the
// forest consistent:
//
//   - submenu-opened: a node began opening; open siblings (same
//     parent) close, so each parent has at most one open child.
//   - item-activated: an item was chosen; the activating node and its
//     ancestors close according to their AutoClose setting.
//   - node-closed: a node closed; its open children close with it.
//
// Input reaches the tree as terminal-neutral [KeyEvent] and
// [PointerEvent] values. Each node's interaction logic (hover intent
// with a safe travel corridor, click-to-toggle, list navigation,
// typeahead, outside/scroll/escape dismissal) turns them into a single
// open-change request. The node's [Content] tracks whether the surface
// is mounted, visible, or finishing its close animation, and its
// [Registry] tracks the keyboard-highlighted item.
//
// All of this runs on one goroutine. Timers go through a
// [clock.Clock]; stale timers are recognised by generation comparison
// rather than cancellation. The package never fails: missing geometry
// skips positioning, an unknown parent degrades to a root node, and
// events for unmounted nodes are ignored.
//
// Data flow:
//
//	[host input] -> Tree.HandleKey / Tree.HandlePointer
//	        |
//	    [Node interaction] -> RequestOpenChange -> OnOpenChange callback
//	        |                                        |
//	    [event bus] <- transition (uncontrolled, or SetControlledOpen)
//	        |
//	  [Content] mount / close / TransitionEnd, [placement.Engine]
package overlay
