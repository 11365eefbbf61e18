package worker

// LogMsgWorkerJobFailed is logged when a job returns an error; the worker keeps running
const LogMsgWorkerJobFailed = "Worker job failed"
