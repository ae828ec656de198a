// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package events carries domain events over an in-process Watermill bus.
//
// The API publishes a ReviewSubmitted event after a review is persisted. The
// bus runs a Watermill router with panic recovery and retry middleware; its
// audit consumer logs each review and counts it in
// review_events_processed_total.
//
// Publishing never blocks on consumers and never fails the originating
// request: a review is durable once stored, and the event is informational.
// Events published while no router is subscribed are dropped.
//
// The Bus implements suture.Service so it runs under the supervisor tree.
package events
