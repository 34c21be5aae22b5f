// Package notify posts CFP alerts after an aggregation run.
//
// Two selections are announced: conferences with open CFPs that were absent
// from the previous snapshot, and open CFPs closing within a week. The webhook
// notifier formats both as Discord messages; the dry-run notifier prints what
// would be sent.
package notify
